// Package google builds authorized Google API clients from service-account
// credentials.
//
// This package contains:
//   - ServiceFactory, which binds scoped credentials to a supported API
//   - ReportingClient, the Analytics Reporting v4 handle it produces
//   - DiscoveryResolver, which confirms a service exists in the Google
//     Discovery directory before a client is bound to it
//   - TokenSource wrapping that turns token endpoint rejections into
//     domain.ErrAuth
//   - Error mapping for googleapi errors (401, 403, 404)
//
// # Usage
//
//	creds, err := loader.Load(ctx, keyFile, []string{domain.AnalyticsReadonlyScope})
//	factory := google.NewServiceFactory()
//	client, err := factory.Build(ctx, creds, domain.AnalyticsReportingV4)
//	reports := client.(*google.ReportingClient).Reporting()
//
// # OAuth2 Scopes
//
// The Analytics Reporting API accepts:
//   - https://www.googleapis.com/auth/analytics.readonly
//   - https://www.googleapis.com/auth/analytics
package google
