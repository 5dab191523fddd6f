// Package credentials mints and caches the short-lived bearer token used to
// call the spreadsheet service.
//
// # Cache
//
// One process-wide (token, expiry) pair, guarded by a mutex and replaced
// wholesale on refresh. Refresh is lazy: the first caller after expiry
// (minus a 60 second buffer) mints a new token; there is no background
// refresh timer. Concurrent callers may race, producing a brief double
// refresh; that is tolerated, a partially written token is not.
//
// # Provider
//
// GoogleProvider implements the OAuth2 JWT-bearer flow: it signs an RS256
// assertion with the injected service-account key and exchanges it at the
// token endpoint. Tests substitute their own Provider and clock.
//
// # Usage
//
//	cache := credentials.NewCache(credentials.NewGoogleProvider(cfg))
//	token, err := cache.Token(ctx, cfg.ClientEmail, cfg.PrivateKey)
package credentials
