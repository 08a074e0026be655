package dto

type LengthResponse struct {
	Count int64 `json:"count"`
}

type NumberOfPagesResponse struct {
	Pages int64 `json:"pages"`
}
