package simctl

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/simapi/pkg/simsdk"
)

func (a *app) smsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sms",
		Short: "Send, list and cancel SMS",
	}

	cmd.AddCommand(
		a.listCmd("list <iccid>", "List the SMS of a SIM", (*simsdk.Client).ListSMS),
		&cobra.Command{
			Use:   "get <iccid> <sms-id>",
			Short: "Show a single SMS",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				sms, err := a.client.GetSMS(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return a.printJSON(sms)
			},
		},
		&cobra.Command{
			Use:   "delete <iccid> <sms-id>",
			Short: "Cancel a pending SMS",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				code, err := a.client.DeleteSMS(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return a.printStatus(code)
			},
		},
		a.sendSMSCmd(),
	)
	return cmd
}

func (a *app) sendSMSCmd() *cobra.Command {
	var (
		expiry        string
		sourceAddress int64
		udh           string
		dcs           int
	)

	cmd := &cobra.Command{
		Use:   "send <iccid> <text>",
		Short: "Send an SMS to a SIM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []simsdk.SMSOption

			flags := cmd.Flags()
			if flags.Changed("expiry") {
				day, err := time.Parse(time.DateOnly, expiry)
				if err != nil {
					return fmt.Errorf("invalid --expiry %q: want YYYY-MM-DD", expiry)
				}
				opts = append(opts, simsdk.WithExpiry(day))
			}
			if flags.Changed("source-address") {
				opts = append(opts, simsdk.WithSourceAddress(sourceAddress))
			}
			if flags.Changed("udh") {
				opts = append(opts, simsdk.WithUDH(udh))
			}
			if flags.Changed("dcs") {
				opts = append(opts, simsdk.WithDCS(dcs))
			}

			code, err := a.client.SendSMS(cmd.Context(), args[0], args[1], opts...)
			if err != nil {
				return err
			}
			return a.printStatus(code)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&expiry, "expiry", "", "expiry day as YYYY-MM-DD (default: in 7 days)")
	flags.Int64Var(&sourceAddress, "source-address", simsdk.DefaultSourceAddress, "sender address")
	flags.StringVar(&udh, "udh", simsdk.DefaultUDH, "user data header")
	flags.IntVar(&dcs, "dcs", simsdk.DefaultDCS, "data coding scheme")
	return cmd
}
