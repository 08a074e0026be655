package redisrepo

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	POST_KEY           = "post::$%s"               // <postID>
	POST_SLUG_KEY      = "post::%s"                // <slug>
	POSTS_PAGE_KEY     = "post:page::%d"           // <page>
	POSTS_TYPE_KEY     = "post:type::$%s:page::%d" // <postTypeID>:<page>
	POSTS_PAGE_PATTERN = "post:page:*"
	POSTS_TYPE_PATTERN = "post:type:*"
)

func PostKey(postID uuid.UUID) string {
	return fmt.Sprintf(POST_KEY, postID.String())
}

func PostSlugKey(slug string) string {
	return fmt.Sprintf(POST_SLUG_KEY, slug)
}

func PostsPageKey(page int) string {
	return fmt.Sprintf(POSTS_PAGE_KEY, page)
}

func PostsByTypeKey(postTypeID uuid.UUID, page int) string {
	return fmt.Sprintf(POSTS_TYPE_KEY, postTypeID.String(), page)
}

// PostListPatterns match every cached page of posts, filtered or not.
func PostListPatterns() []string {
	return []string{POSTS_PAGE_PATTERN, POSTS_TYPE_PATTERN}
}
