//go:generate mockgen -source=../token_provider.go   -destination=./mock_token_provider.go   -package=mocks
//go:generate mockgen -source=../response_cache.go   -destination=./mock_response_cache.go   -package=mocks
//go:generate mockgen -source=../api_requester.go    -destination=./mock_api_requester.go    -package=mocks
//go:generate mockgen -source=../logger.go           -destination=./mock_logger.go           -package=mocks
//go:generate mockgen -source=../supplier_orders.go  -destination=./mock_supplier_orders.go  -package=mocks

package mocks
