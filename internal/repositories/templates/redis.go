package templates

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
	"github.com/KirkDiggler/itemforge/internal/errors"
	redisclient "github.com/KirkDiggler/itemforge/internal/redis"
)

const (
	templateKeyPrefix = "item_template:"
	templateIndexKey  = "item_template:ids"

	// Error messages
	errTemplateNil     = "template cannot be nil"
	errTemplateIDEmpty = "template ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis template repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed template repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateTemplate(input.Template); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Template)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal template")
	}

	// SETNX keeps two concurrent creates from both succeeding
	created, err := r.client.SetNX(ctx, Key(input.Template.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create template %s", input.Template.ID)
	}
	if !created {
		return nil, errors.AlreadyExistsf("template %s already exists", input.Template.ID)
	}

	if err := r.client.SAdd(ctx, templateIndexKey, input.Template.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index template %s", input.Template.ID)
	}

	return &CreateOutput{Template: input.Template.Clone()}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTemplateIDEmpty)
	}

	result, err := r.client.Get(ctx, Key(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("template %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get template %s", input.ID)
	}

	var tmpl itemdef.Template
	if err := json.Unmarshal([]byte(result), &tmpl); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal template %s", input.ID)
	}

	return &GetOutput{Template: &tmpl}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.PageSize < 0 {
		return nil, errors.InvalidArgument("page size cannot be negative")
	}

	ids, err := r.client.SMembers(ctx, templateIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list template ids")
	}
	sort.Strings(ids)

	start := 0
	if input.PageToken != "" {
		start = sort.SearchStrings(ids, input.PageToken)
		if start < len(ids) && ids[start] == input.PageToken {
			start++
		}
	}

	end := len(ids)
	if input.PageSize > 0 && start+int(input.PageSize) < end {
		end = start + int(input.PageSize)
	}

	output := &ListOutput{
		Templates: make([]*itemdef.Template, 0, end-start),
		TotalSize: int32(len(ids)),
	}
	if start >= end {
		return output, nil
	}

	page := ids[start:end]
	keys := make([]string, len(page))
	for i, id := range page {
		keys[i] = Key(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load templates")
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry without a body; skip it rather than fail the page
			continue
		}
		var tmpl itemdef.Template
		if err := json.Unmarshal([]byte(raw), &tmpl); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal template %s", page[i])
		}
		output.Templates = append(output.Templates, &tmpl)
	}

	if end < len(ids) {
		output.NextPageToken = ids[end-1]
	}

	return output, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateTemplate(input.Template); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Template)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal template")
	}

	// SET XX only writes when the key already exists
	updated, err := r.client.SetXX(ctx, Key(input.Template.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update template %s", input.Template.ID)
	}
	if !updated {
		return nil, errors.NotFoundf("template %s not found", input.Template.ID)
	}

	return &UpdateOutput{Template: input.Template.Clone()}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTemplateIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, Key(input.ID))
	pipe.SRem(ctx, templateIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete template %s", input.ID)
	}

	if del.Val() == 0 {
		return nil, errors.NotFoundf("template %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func validateTemplate(tmpl *itemdef.Template) error {
	if tmpl == nil {
		return errors.InvalidArgument(errTemplateNil)
	}
	if tmpl.ID == "" {
		return errors.InvalidArgument(errTemplateIDEmpty)
	}
	return nil
}

// Key returns the Redis key for a template
// Exposed for testing purposes
func Key(id string) string {
	return templateKeyPrefix + id
}

// IndexKey returns the Redis key of the template id set
func IndexKey() string {
	return templateIndexKey
}
