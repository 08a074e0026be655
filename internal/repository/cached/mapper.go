package cached

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BloggingApp/post-catalog/internal/model"
	"github.com/BloggingApp/post-catalog/pkg/utils"
	"github.com/google/uuid"
)

// errCorruptCacheValue marks a cached value that cannot be turned back into a valid post.
// It is absorbed inside this package and never returned to callers.
var errCorruptCacheValue = errors.New("corrupt cache value")

func decodePost(raw string) (*model.Post, error) {
	var post model.Post
	if err := json.Unmarshal([]byte(raw), &post); err != nil {
		return nil, fmt.Errorf("%w: %s", errCorruptCacheValue, err.Error())
	}
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errCorruptCacheValue, err.Error())
	}
	return &post, nil
}

func decodePointer(raw string) (uuid.UUID, error) {
	if !utils.IsStrictIdentifier(raw) {
		return uuid.Nil, fmt.Errorf("%w: pointer %q is not an id", errCorruptCacheValue, raw)
	}
	return uuid.MustParse(raw), nil
}

func postIDs(posts []*model.Post) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}
	return ids
}

func compact(posts []*model.Post) []*model.Post {
	result := make([]*model.Post, 0, len(posts))
	for _, post := range posts {
		if post != nil {
			result = append(result, post)
		}
	}
	return result
}
