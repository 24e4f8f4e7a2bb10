package services

import "github.com/go-playground/validator/v10"

// A single validator instance is shared by all services; it caches struct
// metadata and is safe for concurrent use.
var validate = validator.New()
