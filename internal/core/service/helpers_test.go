package service

import "github.com/vidly/rental-system/internal/core/ports"

func registerInput(name, email, password string) ports.RegisterInput {
	return ports.RegisterInput{Name: name, Email: email, Password: password}
}
