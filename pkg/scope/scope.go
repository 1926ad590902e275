package scope

import (
	"fmt"
	"time"

	"ministry-srv/internal/model"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

func (m *implManager) CreateToken(cred model.Credential) (string, model.Credential, error) {
	if cred.Identifier == "" || cred.AccountID == "" {
		return "", model.Credential{}, fmt.Errorf("%w: identifier and account are required", ErrInvalidToken)
	}
	if cred.Role == nil {
		return "", model.Credential{}, fmt.Errorf("%w: role is required", ErrInvalidToken)
	}
	// Re-run the role through the constructor so only well-formed variants get signed.
	role, err := model.NewRole(cred.Role.Kind(), cred.Role.Scoping())
	if err != nil {
		return "", model.Credential{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	now := m.clock()
	iat := now.Unix()
	exp := now.Add(m.ttl).Unix()

	payload := Payload{
		StandardClaims: jwt.StandardClaims{
			Subject:   cred.Identifier,
			Issuer:    m.issuer,
			Id:        uuid.NewString(),
			IssuedAt:  iat,
			ExpiresAt: exp,
		},
		AccountID:   cred.AccountID,
		Name:        cred.Name,
		Role:        role.Kind(),
		Scoping:     role.Scoping(),
		Assignments: cred.Assignments,
	}
	if len(payload.Assignments) == 0 {
		payload.Assignments = nil
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(m.key)
	if err != nil {
		return "", model.Credential{}, err
	}

	cred.Role = role
	cred.Assignments = payload.Assignments
	cred.IssuedAt = time.Unix(iat, 0)
	cred.ExpiresAt = time.Unix(exp, 0)
	return token, cred, nil
}

func (m *implManager) Verify(token string) (model.Credential, error) {
	if token == "" {
		return model.Credential{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, t.Header["alg"])
		}
		return m.key, nil
	}

	// Expiry is checked below against the manager clock.
	parser := &jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true,
	}

	var payload Payload
	jwtToken, err := parser.ParseWithClaims(token, &payload, keyFunc)
	if err != nil {
		return model.Credential{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !jwtToken.Valid {
		return model.Credential{}, fmt.Errorf("%w: token is not valid", ErrInvalidToken)
	}

	if !payload.VerifyExpiresAt(m.clock().Unix(), true) {
		return model.Credential{}, ErrExpiredToken
	}
	if m.issuer != "" && !payload.VerifyIssuer(m.issuer, true) {
		return model.Credential{}, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidToken, payload.Issuer)
	}
	if payload.Subject == "" || payload.AccountID == "" {
		return model.Credential{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	role, err := model.NewRole(payload.Role, payload.Scoping)
	if err != nil {
		return model.Credential{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return model.Credential{
		Identifier:  payload.Subject,
		AccountID:   payload.AccountID,
		Name:        payload.Name,
		Role:        role,
		Assignments: payload.Assignments,
		IssuedAt:    time.Unix(payload.IssuedAt, 0),
		ExpiresAt:   time.Unix(payload.ExpiresAt, 0),
	}, nil
}
