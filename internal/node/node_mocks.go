package node

//go:generate moq -pkg mocks -out ./mocks/signer_mock.go ./ Signer

//go:generate moq -pkg mocks -out ./mocks/broadcaster_mock.go ./ Broadcaster
