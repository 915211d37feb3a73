package simctl

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/simapi/pkg/simsdk"
)

type objectFetcher func(c *simsdk.Client, ctx context.Context, iccid string) (simsdk.Object, error)

type listFetcher func(c *simsdk.Client, ctx context.Context, iccid string) ([]simsdk.Object, error)

func (a *app) simsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sims",
		Short: "Query and update SIM cards",
	}

	quota := &cobra.Command{
		Use:   "quota",
		Short: "Show the remaining quota of a SIM",
	}
	quota.AddCommand(
		a.objectCmd("data <iccid>", "Show the remaining data volume", (*simsdk.Client).GetSimDataQuota),
		a.objectCmd("sms <iccid>", "Show the remaining SMS volume", (*simsdk.Client).GetSimSMSQuota),
	)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all SIMs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				sims, err := a.client.ListSims(cmd.Context())
				if err != nil {
					return err
				}
				return a.printJSON(sims)
			},
		},
		a.objectCmd("get <iccid>", "Show the details of a SIM", (*simsdk.Client).GetSim),
		a.objectCmd("status <iccid>", "Show the connection status of a SIM", (*simsdk.Client).GetSimStatus),
		a.objectCmd("usage <iccid>", "Show the data and SMS usage of a SIM", (*simsdk.Client).GetSimUsage),
		a.objectCmd("connectivity <iccid>", "Show the network reachability of a SIM", (*simsdk.Client).GetSimConnectivity),
		a.listCmd("events <iccid>", "List the events of a SIM", (*simsdk.Client).ListSimEvents),
		quota,
		a.resetCmd(),
		a.stateCmd(),
	)
	return cmd
}

func (a *app) objectCmd(use, short string, fetch objectFetcher) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := fetch(a.client, cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(obj)
		},
	}
}

func (a *app) listCmd(use, short string, fetch listFetcher) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := fetch(a.client, cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(list)
		},
	}
}

func (a *app) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <iccid>",
		Short: "Trigger a network reset of a SIM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := a.client.ResetSim(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printStatus(code)
		},
	}
}

func (a *app) stateCmd() *cobra.Command {
	var (
		label    string
		imeiLock bool
	)

	cmd := &cobra.Command{
		Use:   "state <iccid> <Activated|Disabled>",
		Short: "Activate or disable a SIM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := simsdk.SimStatus(args[1])
			if !status.Valid() {
				return fmt.Errorf("invalid status %q: want %s or %s", args[1], simsdk.StatusActivated, simsdk.StatusDisabled)
			}

			code, err := a.client.ChangeSimState(cmd.Context(), args[0], status,
				simsdk.WithLabel(label),
				simsdk.WithIMEILock(imeiLock),
			)
			if err != nil {
				return err
			}
			return a.printStatus(code)
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "label to store on the SIM")
	cmd.Flags().BoolVar(&imeiLock, "imei-lock", true, "lock the SIM to its current IMEI")
	return cmd
}
