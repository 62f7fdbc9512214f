package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

// objectServer answers the S3 calls minio-go makes to read one object.
func objectServer(t *testing.T, bucket, key string, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.URL.Query()["location"]; ok {
			w.Header().Set("Content-Type", "application/xml")
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+
				`<LocationConstraint xmlns="http://s3.amazonaws.com/doc/2006-03-01/">us-east-1</LocationConstraint>`)
			return
		}
		if r.URL.Path != "/"+bucket+"/"+key {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+
				`<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.Header().Set("ETag", `"0f343b0931126a20f133d67c2b018a3b"`)
		w.Header().Set("Last-Modified", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC).Format(http.TimeFormat))
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenObject(t *testing.T) {
	srv := objectServer(t, "models", "titanic/model.gob", []byte("gob artifact"))
	cfg := MinIOConfig{
		Endpoint:        strings.TrimPrefix(srv.URL, "http://"),
		AccessKeyID:     "minioadmin",
		SecretAccessKey: "minioadmin",
	}

	rc, err := Open(context.Background(), "s3://models/titanic/model.gob", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read object: %v", err)
	}
	if string(b) != "gob artifact" {
		t.Fatalf("unexpected content %q", b)
	}
}

func TestOpenMissingObject(t *testing.T) {
	srv := objectServer(t, "models", "titanic/model.gob", []byte("gob artifact"))
	cfg := MinIOConfig{Endpoint: strings.TrimPrefix(srv.URL, "http://")}
	if _, err := Open(context.Background(), "s3://models/other.gob", cfg); err == nil {
		t.Fatalf("expected error for missing object")
	}
}

func TestOpenLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.gob")
	if err := os.WriteFile(path, []byte("artifact"), 0o644); err != nil {
		t.Fatal(err)
	}
	rc, err := Open(context.Background(), path, MinIOConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()
	b, _ := io.ReadAll(rc)
	if string(b) != "artifact" {
		t.Fatalf("unexpected content %q", b)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(context.Background(), filepath.Join(t.TempDir(), "none.gob"), MinIOConfig{}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestOpenObjectWithoutEndpoint(t *testing.T) {
	if _, err := Open(context.Background(), "s3://models/titanic.gob", MinIOConfig{}); err == nil {
		t.Fatalf("expected error without endpoint")
	}
}

func TestParseObjectURI(t *testing.T) {
	bucket, key, err := ParseObjectURI("s3://models/titanic/v1.gob")
	if err != nil || bucket != "models" || key != "titanic/v1.gob" {
		t.Fatalf("got %q %q %v", bucket, key, err)
	}
	for _, bad := range []string{"s3://", "s3://bucket", "s3://bucket/", "s3:///key"} {
		if _, _, err := ParseObjectURI(bad); err == nil {
			t.Fatalf("%q: expected error", bad)
		}
	}
}
