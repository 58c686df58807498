package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Store --dir ../domain/weekly --output domain/weekly --outpkg weeklymock --filename store_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name GameRepository --dir ../domain/refdata --output domain/refdata --outpkg refdatamock --filename game_repository_mock.go
