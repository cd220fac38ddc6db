package service

import "errors"

// ErrNilDependency is returned by constructors when a required collaborator is missing.
// It is a wiring mistake, never a request-level condition.
var ErrNilDependency = errors.New("required dependency is nil")
