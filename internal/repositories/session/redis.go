package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/msh-chargen/internal/entities"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
	redisclient "github.com/KirkDiggler/msh-chargen/internal/redis"
)

const sessionKeyPrefix = "msh:session:"

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed session repository. A zero ttl
// selects DefaultTTL.
func NewRedisRepository(client redisclient.Client, ttl time.Duration) Repository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	created, err := r.client.SetNX(ctx, sessionKeyPrefix+input.Session.ID, data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create session")
	}
	if !created {
		return nil, errors.Newf(errors.CodeAlreadyExists, "session %s already exists", input.Session.ID)
	}

	return &CreateOutput{Session: input.Session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	result, err := r.client.Get(ctx, sessionKeyPrefix+input.ID).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("session %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get session")
	}

	var s entities.Session
	if err := json.Unmarshal(result, &s); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	return &GetOutput{Session: &s}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	updated, err := r.client.SetXX(ctx, sessionKeyPrefix+input.Session.ID, data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update session")
	}
	if !updated {
		return nil, errors.NotFoundf("session %s not found", input.Session.ID)
	}

	return &UpdateOutput{Session: input.Session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	deleted, err := r.client.Del(ctx, sessionKeyPrefix+input.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete session")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("session %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
