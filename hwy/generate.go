package hwy

//go:generate go run ../cmd/lanegen --config lanes.yaml --output .
