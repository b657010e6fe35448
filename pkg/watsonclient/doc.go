// Package watsonclient is the entry point for constructing Watson service
// clients. Each constructor returns the Client interface of the matching
// package under pkg/services.
//
// The constructors apply the service defaults before building the client:
// the VCAP_SERVICES key and public URL of the service are filled in when the
// config leaves them empty, a trailing slash is trimmed from the URL and a
// URL without a scheme gets https://.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/watson/pkg/services/toneanalyzerv3"
//	  "github.com/fivetwenty-io/watson/pkg/watson"
//	  "github.com/fivetwenty-io/watson/pkg/watsonclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  tone, err := watsonclient.NewToneAnalyzerV3(&watson.Config{
//	    Version:   "2017-09-21",
//	    IAMAPIKey: "my-api-key",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  analysis, _, err := tone.Tone(ctx, &toneanalyzerv3.ToneOptions{
//	    ToneInput: &toneanalyzerv3.ToneInput{Text: "I am thrilled"},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = analysis
//	}
//
// # VCAP_SERVICES
//
// When the config carries no credentials and IgnoreVCAPServices is false, the
// first entry of VCAP_SERVICES under the service name (or an instance with
// that name) supplies them. An apikey or iam_apikey becomes the IAM API key;
// otherwise the username and password are used. The VCAP url only fills an
// empty URL.
//
// # Tokens
//
// RequestIAMToken exchanges an API key for an IAM access token without
// building a service client, which is useful to check credentials.
package watsonclient
