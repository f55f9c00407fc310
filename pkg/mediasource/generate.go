package mediasource

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_source.go github.com/kasuboski/mediastat/pkg/mediasource Source,Factory
