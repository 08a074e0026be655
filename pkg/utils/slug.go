package utils

import "github.com/gosimple/slug"

func Slugify(value string) string {
	return slug.Make(value)
}

func IsSlug(value string) bool {
	return slug.IsSlug(value)
}
