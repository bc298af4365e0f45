package testutil

import (
	"Meal-Planner-Backend/internal/utils/storage"
	"context"
	"fmt"
	"strings"
)

// FakeS3 keeps uploads in memory.
type FakeS3 struct {
	Objects map[string][]byte
	Err     error
}

var _ storage.AwsS3 = (*FakeS3)(nil)

const fakeS3Base = "https://fake-bucket.local/"

func (f *FakeS3) UploadFile(_ context.Context, name string, data []byte, _ string, folder string, _ ...string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	if f.Objects == nil {
		f.Objects = map[string][]byte{}
	}
	key := fmt.Sprintf("%s/%s-%d", folder, name, len(f.Objects))
	f.Objects[key] = data
	return key, nil
}

func (f *FakeS3) DeleteFile(_ context.Context, objectKey string) error {
	delete(f.Objects, objectKey)
	return f.Err
}

func (f *FakeS3) GetPublicLinkKey(objectKey string) string {
	return fakeS3Base + objectKey
}

func (f *FakeS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, fakeS3Base)
}
