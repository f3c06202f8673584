package jwtsign

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

// Signer issues HS256-signed download URLs. The token binds the stored
// object key, the requesting actor, and an expiry, so a leaked URL cannot be
// replayed for another object or past its TTL.
type Signer struct {
	secret  []byte
	baseURL string
}

func New(secret []byte, baseURL string) Signer {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = "https://cdn.enablehub.local"
	}
	return Signer{secret: secret, baseURL: base}
}

type downloadClaims struct {
	StorageKey string `json:"storage_key"`
	VersionID  string `json:"version_id"`
	ActorID    string `json:"actor_id"`
	jwt.RegisteredClaims
}

func (s Signer) SignDownloadURL(version entities.AssetVersion, actorID string, expiresAt time.Time) (string, error) {
	claims := downloadClaims{
		StorageKey: version.StorageKey,
		VersionID:  version.VersionID,
		ActorID:    actorID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   version.VersionID,
			ExpiresAt: jwt.NewNumericDate(expiresAt.UTC()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign download token: %w", err)
	}
	return fmt.Sprintf("%s/downloads/%s?token=%s",
		s.baseURL,
		url.PathEscape(version.StorageKey),
		url.QueryEscape(token),
	), nil
}

// VerifyDownloadToken parses a token issued by SignDownloadURL and returns
// the version id it was bound to. The download edge uses it to authorize the
// object fetch.
func (s Signer) VerifyDownloadToken(raw string) (string, error) {
	var claims downloadClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	return claims.VersionID, nil
}
