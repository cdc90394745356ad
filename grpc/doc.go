// Package proteintext holds the generated ProteinText gRPC service and its
// messages.
package proteintext

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative proteintext.proto
