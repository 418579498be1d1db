// Package service contains the business logic.
//
// It sits behind the handler layer: it receives bound request data from a
// handler and performs the operation the endpoint stands for.
package service
