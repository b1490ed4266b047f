// Package service implements the CRM use cases behind the CLI commands.
//
// Every privileged operation starts with an explicit guard call against the
// auth engine and branches on a typed result; there is no ambient session
// state. Department permission is checked first, then ownership where an
// operation requires the caller to be the recorded owner of the target
// record (the assigned commercial of a client or contract, the assigned
// support of an event). Both checks must pass: department permission is
// necessary but not sufficient when ownership is required.
package service
