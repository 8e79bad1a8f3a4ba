// Package service contains the application-specific use cases. It sits
// between the HTTP adapter in internal/api and the generation core,
// normalizing requests and wrapping generator output in the response
// envelope. Services receive their dependencies through constructor
// injection and hold no per-request state.
package service
