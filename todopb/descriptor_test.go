package todopb_test

import (
	"bytes"
	"compress/gzip"
	"io/ioutil"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/golang/protobuf/protoc-gen-go/descriptor"

	"github.com/example/todo/todopb"
)

// TestFileDescriptor checks that the generated file registers a
// descriptor that tools like grpcurl and the reflection service can
// read back.
func TestFileDescriptor(t *testing.T) {
	compressed := proto.FileDescriptor("todo.proto")

	if len(compressed) == 0 {
		t.Fatalf("expected todo.proto registered with the proto package")
	}

	reader, err := gzip.NewReader(bytes.NewReader(compressed))

	if err != nil {
		t.Fatalf("could not open descriptor: %v", err)
	}

	raw, err := ioutil.ReadAll(reader)

	if err != nil {
		t.Fatalf("could not decompress descriptor: %v", err)
	}

	var fileDescriptor descriptor.FileDescriptorProto

	if err := proto.Unmarshal(raw, &fileDescriptor); err != nil {
		t.Fatalf("could not unmarshal descriptor: %v", err)
	}

	if fileDescriptor.GetName() != "todo.proto" || fileDescriptor.GetPackage() != "todo" {
		t.Fatalf("unexpected descriptor: name=%q package=%q", fileDescriptor.GetName(), fileDescriptor.GetPackage())
	}

	if len(fileDescriptor.GetMessageType()) != 11 {
		t.Fatalf("expected 11 message types, got %d", len(fileDescriptor.GetMessageType()))
	}

	if len(fileDescriptor.GetService()) != 1 || fileDescriptor.GetService()[0].GetName() != "TodoService" {
		t.Fatalf("expected the TodoService service, got %+v", fileDescriptor.GetService())
	}
}

func TestMessageDescriptorIndexes(t *testing.T) {
	todoBytes, todoPath := (&todopb.Todo{}).Descriptor()
	responseBytes, responsePath := (&todopb.DeleteTodoResponse{}).Descriptor()

	if !bytes.Equal(todoBytes, responseBytes) {
		t.Fatalf("messages from one file must share descriptor bytes")
	}

	if len(todoPath) != 1 || todoPath[0] != 0 {
		t.Fatalf("expected Todo at index 0, got %v", todoPath)
	}

	if len(responsePath) != 1 || responsePath[0] != 10 {
		t.Fatalf("expected DeleteTodoResponse at index 10, got %v", responsePath)
	}
}
