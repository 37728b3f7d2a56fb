package handler

//go:generate moq -pkg mocks -out ./mocks/node_api_mock.go ./ NodeAPI

//go:generate moq -pkg mocks -out ./mocks/wallet_mock.go ./ Wallet
