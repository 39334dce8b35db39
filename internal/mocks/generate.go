package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name TeamProvider --dir ../usecase --output usecase --outpkg usecasemock --filename team_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name GameProvider --dir ../usecase --output usecase --outpkg usecasemock --filename game_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PlayerProvider --dir ../usecase --output usecase --outpkg usecasemock --filename player_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name LeagueDataProvider --dir ../usecase --output usecase --outpkg usecasemock --filename league_data_provider_mock.go
