/*
Package simsdk provides a client for the 1NCE SIM management API.

# Overview

The client authenticates with the OAuth2 client credentials grant and exposes
one method per management endpoint. Every call fetches a fresh access token
immediately before the substantive request; tokens are never cached.

	client := simsdk.NewClient(clientID, clientSecret)

	// Read operations decode the JSON answer into generic objects
	sims, err := client.ListSims(ctx)
	status, err := client.GetSimStatus(ctx, iccid)

	// Mutations return the raw HTTP status code
	code, err := client.ChangeSimState(ctx, iccid, simsdk.StatusDisabled, simsdk.WithLabel("lab"))

# Request Pipeline

Each operation runs the same pipeline:

 1. FetchToken posts grant_type=client_credentials to /oauth/token with a
    Basic authorization header built from the client id and secret.
 2. NewRequest builds {BaseURL}/{APIVersion}/{path}, attaches the
    "{token_type} {access_token}" Authorization header plus the standard
    headers, and serialises the payload (an empty object when there is none)
    as the JSON body, for every verb.
 3. The request is sent through HTTPClient and the answer is decoded.

# Decoding

The API has no stable response schema, so read operations return Object, a
decoded JSON object with typed accessors that report absence instead of
panicking:

	info, err := client.GetSim(ctx, iccid)
	if imsi, ok := info.String("imsi"); ok {
		fmt.Println(imsi)
	}

# Error Handling

  - AuthError: the token endpoint did not return an access token. Fatal for
    the call and never retried; the substantive request is not sent.
  - TransportError: the HTTP client failed to deliver the request.
  - APIError: a read operation was answered with a non-2xx status. The decoded
    body is kept on the error.

Mutations (SendSMS, ResetSim, ChangeSimState, DeleteSMS) do not treat any
HTTP status as an error. They return the status code and discard the body;
use httpx.IsSuccess to classify it.

# Thread Safety

A Client holds no mutable state after construction and is safe for concurrent
use as long as its HTTPClient is.
*/
package simsdk
