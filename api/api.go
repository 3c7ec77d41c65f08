// Package api holds the OpenAPI document of the order service.
package api

import _ "embed"

// OpenAPI is the JSON OpenAPI 3 document served at /swagger and used for request validation.
//
//go:embed openapi.json
var OpenAPI []byte
