package miner

//go:generate moq -pkg mocks -out ./mocks/block_miner_mock.go ./ BlockMiner
