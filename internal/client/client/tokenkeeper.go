package client

import (
	"context"

	"github.com/northlink/selfcare/internal/client/repositories/metadata"
)

const refreshTokenKey = "refresh_token"

// MetadataTokenKeeper stores the remembered refresh token in the local
// metadata table.
type MetadataTokenKeeper struct {
	repo metadata.Repository
}

func NewMetadataTokenKeeper(repo metadata.Repository) *MetadataTokenKeeper {
	return &MetadataTokenKeeper{repo: repo}
}

func (k *MetadataTokenKeeper) SaveRefreshToken(ctx context.Context, token string) error {
	return k.repo.Set(ctx, refreshTokenKey, []byte(token))
}

func (k *MetadataTokenKeeper) LoadRefreshToken(ctx context.Context) (string, error) {
	value, err := k.repo.Get(ctx, refreshTokenKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (k *MetadataTokenKeeper) ClearRefreshToken(ctx context.Context) error {
	return k.repo.Delete(ctx, refreshTokenKey)
}
