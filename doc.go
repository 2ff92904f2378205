// Package mifosx holds the immutable configuration shared by the MifosX
// SDK services.
//
// A Config captures the platform base URL, the tenant identifier, and the
// basic-auth credentials once, at construction, and is never mutated
// afterwards. Services receive the configuration explicitly; the SDK keeps
// no ambient or global state.
//
// Example usage:
//
//	cfg, err := mifosx.NewConfig(
//	    mifosx.WithBaseURL("https://demo.openmf.org/mifosng-provider/api/v1"),
//	    mifosx.WithTenant("default"),
//	    mifosx.WithCredentials("mifos", "password"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sender := transport.NewRESTSender(cfg)
//	clients := client.NewService(sender)
package mifosx
