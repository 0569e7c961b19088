// Package services contains the application operations exposed to front-end
// collaborators: account registration and login, the course catalog, and
// per-course progress tracking. Services own transaction boundaries;
// repositories stay scope-agnostic.
package services

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance; validator instances cache
// struct metadata, so a single one is reused across services.
var validate = validator.New(validator.WithRequiredStructEnabled())
