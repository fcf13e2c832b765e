package rpc

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// CodecName is the gRPC content-subtype of the auth service
// ("application/grpc+authproto"). The payload is protobuf wire format.
const CodecName = "authproto"

func init() {
	encoding.RegisterCodec(protoCodec{})
}

// wireMessage is implemented by every DTO that crosses the wire.
type wireMessage interface {
	descriptor() protoreflect.MessageDescriptor
	toProto() *dynamicpb.Message
	fromProto(m protoreflect.Message)
}

// protoCodec encodes DTOs as the auth.proto messages.
type protoCodec struct{}

func (protoCodec) Marshal(v any) ([]byte, error) {
	w, ok := v.(wireMessage)
	if !ok {
		return nil, fmt.Errorf("%s: cannot marshal %T", CodecName, v)
	}
	return proto.Marshal(w.toProto())
}

func (protoCodec) Unmarshal(data []byte, v any) error {
	w, ok := v.(wireMessage)
	if !ok {
		return fmt.Errorf("%s: cannot unmarshal into %T", CodecName, v)
	}
	m := dynamicpb.NewMessage(w.descriptor())
	if err := proto.Unmarshal(data, m); err != nil {
		return err
	}
	w.fromProto(m)
	return nil
}

func (protoCodec) Name() string {
	return CodecName
}

func setString(m *dynamicpb.Message, name, v string) {
	// proto3 strings have no presence; the empty value is simply omitted.
	if v == "" {
		return
	}
	m.Set(m.Descriptor().Fields().ByName(protoreflect.Name(name)), protoreflect.ValueOfString(v))
}

func getString(m protoreflect.Message, name string) string {
	return m.Get(m.Descriptor().Fields().ByName(protoreflect.Name(name))).String()
}

func (r *RegisterUserRequest) descriptor() protoreflect.MessageDescriptor {
	return registerUserRequestDesc
}

func (r *RegisterUserRequest) toProto() *dynamicpb.Message {
	m := dynamicpb.NewMessage(registerUserRequestDesc)
	setString(m, "email", r.Email)
	setString(m, "name", r.Name)
	setString(m, "password", r.Password)
	return m
}

func (r *RegisterUserRequest) fromProto(m protoreflect.Message) {
	r.Email = getString(m, "email")
	r.Name = getString(m, "name")
	r.Password = getString(m, "password")
}

func (r *LoginUserRequest) descriptor() protoreflect.MessageDescriptor {
	return loginUserRequestDesc
}

func (r *LoginUserRequest) toProto() *dynamicpb.Message {
	m := dynamicpb.NewMessage(loginUserRequestDesc)
	setString(m, "email", r.Email)
	setString(m, "password", r.Password)
	return m
}

func (r *LoginUserRequest) fromProto(m protoreflect.Message) {
	r.Email = getString(m, "email")
	r.Password = getString(m, "password")
}

func (r *VerifyUserRequest) descriptor() protoreflect.MessageDescriptor {
	return verifyUserRequestDesc
}

func (r *VerifyUserRequest) toProto() *dynamicpb.Message {
	m := dynamicpb.NewMessage(verifyUserRequestDesc)
	setString(m, "token", r.Token)
	return m
}

func (r *VerifyUserRequest) fromProto(m protoreflect.Message) {
	r.Token = getString(m, "token")
}

func (r *AuthResponse) descriptor() protoreflect.MessageDescriptor {
	return authResponseDesc
}

func (r *AuthResponse) toProto() *dynamicpb.Message {
	u := dynamicpb.NewMessage(userDesc)
	setString(u, "id", r.User.ID)
	setString(u, "email", r.User.Email)
	setString(u, "name", r.User.Name)

	m := dynamicpb.NewMessage(authResponseDesc)
	m.Set(authResponseDesc.Fields().ByName("user"), protoreflect.ValueOfMessage(u))
	setString(m, "token", r.Token)
	return m
}

func (r *AuthResponse) fromProto(m protoreflect.Message) {
	r.Token = getString(m, "token")
	r.User = User{}

	fd := authResponseDesc.Fields().ByName("user")
	if !m.Has(fd) {
		return
	}
	u := m.Get(fd).Message()
	r.User = User{
		ID:    getString(u, "id"),
		Email: getString(u, "email"),
		Name:  getString(u, "name"),
	}
}
