package main

import (
	"github.com/aems-dev/aems-go/pkg/serverless"
	"github.com/aems-dev/aems-go/pkg/utils"
)

func main() {
	utils.InitMetrics()
	serverless.LambdaMain()
}
