// Package proto holds the Selfcare portal API definition. The Go bindings
// (selfcare.pb.go, selfcare_grpc.pb.go) are generated into this package
// and are not committed; run go generate (or `make proto`) after changing
// selfcare.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative selfcare.proto
