package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/gurkankaymak/hocon"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listBucketsXML = `<?xml version="1.0" encoding="UTF-8"?>
<ListAllMyBucketsResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Owner><ID>owner</ID><DisplayName>owner</DisplayName></Owner>
  <Buckets>
    <Bucket><Name>zeta</Name><CreationDate>2024-01-01T00:00:00.000Z</CreationDate></Bucket>
    <Bucket><Name>alpha</Name><CreationDate>2024-01-02T00:00:00.000Z</CreationDate></Bucket>
    <Bucket><Name>mu</Name><CreationDate>2024-01-03T00:00:00.000Z</CreationDate></Bucket>
  </Buckets>
</ListAllMyBucketsResult>`

const accessDeniedXML = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>AccessDenied</Code><Message>Access Denied</Message><RequestId>req</RequestId></Error>`

func s3Conf(t *testing.T, endpoint string) *hocon.Config {
	t.Helper()
	conf, err := hocon.ParseString(`
s3 {
  region = eu-central-1
  endpoint = "` + endpoint + `"
  force_path_style = true
}
`)
	require.NoError(t, err)
	return conf
}

func TestInitS3(t *testing.T) {
	svc, err := InitS3(s3Conf(t, "http://localhost:9000"), "access", "secret")
	require.NoError(t, err)

	assert.Equal(t, "eu-central-1", aws.StringValue(svc.Config.Region))
	assert.Equal(t, "http://localhost:9000", aws.StringValue(svc.Config.Endpoint))
	assert.True(t, aws.BoolValue(svc.Config.S3ForcePathStyle))

	creds, err := svc.Config.Credentials.Get()
	require.NoError(t, err)
	assert.Equal(t, "access", creds.AccessKeyID)
}

func TestListBucketNamesAgainstS3API(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(listBucketsXML))
	}))
	defer srv.Close()

	api, err := InitS3(s3Conf(t, srv.URL), "access", "secret")
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()
	s := New(api, nil, logger)

	got, err := s.ListBucketNames(context.Background(), "desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "mu", "alpha"}, got)
}

func TestListBucketNamesAccessDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(accessDeniedXML))
	}))
	defer srv.Close()

	api, err := InitS3(s3Conf(t, srv.URL), "access", "secret")
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()
	s := New(api, nil, logger)

	_, err = s.ListBucketNames(context.Background(), "asc")
	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Contains(t, err.Error(), "AccessDenied")
}
