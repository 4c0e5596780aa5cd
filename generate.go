package bpec

// Generate documentation for the root package
//go:generate gomarkdoc -o README.md -e . --embed --repository.url https://github.com/agentstation/bpec --repository.default-branch master --repository.path /

// Generate documentation for the CLI package
//go:generate gomarkdoc -o ./cmd/bpec/README.md -e ./cmd/bpec --embed --repository.url https://github.com/agentstation/bpec --repository.default-branch master --repository.path /cmd/bpec
