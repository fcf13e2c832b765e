package rpc

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// ProtoFile is the file name the service descriptor is registered under.
const ProtoFile = "auth.proto"

// Message descriptors of auth.proto, built once at init.
var (
	authFileDesc            protoreflect.FileDescriptor
	registerUserRequestDesc protoreflect.MessageDescriptor
	loginUserRequestDesc    protoreflect.MessageDescriptor
	verifyUserRequestDesc   protoreflect.MessageDescriptor
	userDesc                protoreflect.MessageDescriptor
	authResponseDesc        protoreflect.MessageDescriptor
)

func init() {
	fd, err := protodesc.NewFile(authFileProto(), nil)
	if err != nil {
		panic(err)
	}
	authFileDesc = fd

	msgs := fd.Messages()
	registerUserRequestDesc = msgs.ByName("RegisterUserRequest")
	loginUserRequestDesc = msgs.ByName("LoginUserRequest")
	verifyUserRequestDesc = msgs.ByName("VerifyUserRequest")
	userDesc = msgs.ByName("User")
	authResponseDesc = msgs.ByName("AuthResponse")
}

func stringField(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(name),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
	}
}

func messageField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(name),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
		TypeName: proto.String(typeName),
	}
}

func method(name, in string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       proto.String(name),
		InputType:  proto.String(".auth." + in),
		OutputType: proto.String(".auth.AuthResponse"),
	}
}

// authFileProto describes the service in proto3:
//
//	message RegisterUserRequest { string email = 1; string name = 2; string password = 3; }
//	message LoginUserRequest    { string email = 1; string password = 2; }
//	message VerifyUserRequest   { string token = 1; }
//	message User                { string id = 1; string email = 2; string name = 3; }
//	message AuthResponse        { User user = 1; string token = 2; }
func authFileProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(ProtoFile),
		Package: proto.String("auth"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("RegisterUserRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("email", 1),
					stringField("name", 2),
					stringField("password", 3),
				},
			},
			{
				Name: proto.String("LoginUserRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("email", 1),
					stringField("password", 2),
				},
			},
			{
				Name:  proto.String("VerifyUserRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{stringField("token", 1)},
			},
			{
				Name: proto.String("User"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("id", 1),
					stringField("email", 2),
					stringField("name", 3),
				},
			},
			{
				Name: proto.String("AuthResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					messageField("user", 1, ".auth.User"),
					stringField("token", 2),
				},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: proto.String("AuthService"),
				Method: []*descriptorpb.MethodDescriptorProto{
					method("RegisterUser", "RegisterUserRequest"),
					method("LoginUser", "LoginUserRequest"),
					method("VerifyUser", "VerifyUserRequest"),
				},
			},
		},
	}
}
