package main

import (
	"context"
)

type PutRequest struct {
	Bucket      string
	Key         string
	Body        []byte
	ContentType string
}

type BucketClient interface {
	PutObject(ctx context.Context, req PutRequest) error
}
