// Package api translates HTTP requests into service calls for the auth and
// task endpoints, and maps service errors back to status codes and safe
// JSON messages.
package api
