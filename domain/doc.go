// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo). This root package
// holds the validation sentinel and error type shared by all value objects.
package domain
