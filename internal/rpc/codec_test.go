package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestProtoCodecRegistered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, CodecName, c.Name())
}

func TestProtoCodec_RoundTrip(t *testing.T) {
	c := protoCodec{}

	tests := []struct {
		name string
		in   wireMessage
		out  wireMessage
	}{
		{"register", &RegisterUserRequest{Email: "a@x.com", Name: "A", Password: "pässwörd"}, &RegisterUserRequest{}},
		{"login", &LoginUserRequest{Email: "a@x.com", Password: "p"}, &LoginUserRequest{}},
		{"verify", &VerifyUserRequest{Token: "t.o.k"}, &VerifyUserRequest{}},
		{"response", &AuthResponse{User: User{ID: "1", Email: "a@x.com", Name: "A"}, Token: "tok"}, &AuthResponse{}},
		{"empty response", &AuthResponse{}, &AuthResponse{User: User{ID: "stale"}, Token: "stale"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := c.Marshal(tt.in)
			require.NoError(t, err)
			require.NoError(t, c.Unmarshal(b, tt.out))
			assert.Equal(t, tt.in, tt.out)
		})
	}
}

func TestProtoCodec_WireFormat(t *testing.T) {
	b, err := protoCodec{}.Marshal(&VerifyUserRequest{Token: "t"})
	require.NoError(t, err)

	// field 1, length-delimited, "t"
	want := protowire.AppendTag(nil, 1, protowire.BytesType)
	want = protowire.AppendString(want, "t")
	assert.Equal(t, want, b)

	var got VerifyUserRequest
	require.NoError(t, protoCodec{}.Unmarshal(want, &got))
	assert.Equal(t, "t", got.Token)
}

func TestProtoCodec_Errors(t *testing.T) {
	c := protoCodec{}

	_, err := c.Marshal("not a message")
	assert.Error(t, err)

	var s string
	assert.Error(t, c.Unmarshal(nil, &s))

	assert.Error(t, c.Unmarshal([]byte{0xff, 0xff}, &VerifyUserRequest{}))
}

func TestDescriptorMatchesServiceDesc(t *testing.T) {
	sd := authFileDesc.Services().ByName("AuthService")
	require.NotNil(t, sd)
	assert.Equal(t, protoreflect.FullName(ServiceName), sd.FullName())

	for _, m := range AuthServiceDesc.Methods {
		assert.NotNil(t, sd.Methods().ByName(protoreflect.Name(m.MethodName)), m.MethodName)
	}
	assert.Equal(t, ProtoFile, AuthServiceDesc.Metadata)
}

func TestPatternsCoverEveryMethod(t *testing.T) {
	for _, m := range AuthServiceDesc.Methods {
		full := "/" + ServiceName + "/" + m.MethodName
		assert.Contains(t, Patterns, full)
	}
}
