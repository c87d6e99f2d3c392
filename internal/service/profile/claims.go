package profile

import (
	"context"
	"fmt"

	"github.com/gestaorh/portal-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

type tokenCaller struct {
	subjectID string
	role      auth.Role
}

func callerFromContext(ctx context.Context) (tokenCaller, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return tokenCaller{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	subjectID, ok := claims["sub"].(string)
	if !ok || subjectID == "" {
		return tokenCaller{}, fmt.Errorf("sub claim is missing or invalid")
	}
	role, _ := claims["role"].(string)

	return tokenCaller{subjectID: subjectID, role: auth.Role(role)}, nil
}
