// Package watson provides the shared types, errors and helpers for working
// with the IBM Watson cognitive service REST APIs.
//
// # Overview
//
// The watson package defines the configuration (Config), the response
// envelope (DetailedResponse), the typed service error (ServiceError) and the
// model codec used by every service package under pkg/services. Concrete
// service clients are built by the watsonclient package, which wires
// configuration, transport and authentication. Most consumers import
// watsonclient to construct a client and the matching service package for its
// option and model types.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/watson/pkg/services/languagetranslatorv3"
//	  "github.com/fivetwenty-io/watson/pkg/watson"
//	  "github.com/fivetwenty-io/watson/pkg/watsonclient"
//	)
//
//	func example() {
//	  translator, err := watsonclient.NewLanguageTranslatorV3(&watson.Config{
//	    Version:   "2018-05-01",
//	    IAMAPIKey: "my-api-key",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  result, _, err := translator.Translate(context.Background(), &languagetranslatorv3.TranslateOptions{
//	    Text:    []string{"Hola"},
//	    Source:  watson.String("es"),
//	    Target:  watson.String("en"),
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = result
//	}
//
// # Authentication
//
// Credentials are resolved from Config and, when nothing is supplied, from the
// VCAP_SERVICES environment variable. See Config for the precedence rules.
// IAM tokens are fetched lazily and refreshed inline on the call that needs
// them; a Cache (memory or NATS JetStream KV) can share tokens between
// processes.
//
// # Errors
//
// Non-2xx responses are returned as *ServiceError carrying the HTTP status
// code, the best message found in the response body and a small allow-list
// of structured details. Missing required options are reported before any
// network call with errors wrapping ErrMissingParameter.
//
// # Models
//
// Models are plain structs. Their json tags name the wire keys, pointer and
// omitempty fields are optional and validate:"required" marks required keys.
// UnmarshalModel decodes and validates; models that accept arbitrary extra keys
// embed AdditionalProperties.
package watson
