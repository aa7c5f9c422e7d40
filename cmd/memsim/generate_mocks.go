package main

//go:generate mockgen -destination mock_engine_test.go -package main -source engine.go
