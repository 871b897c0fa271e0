package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-leo/design-pattern-demos/internal/trace"
	"github.com/go-leo/design-pattern-demos/iterator"
	"go.uber.org/zap/zapcore"
)

func main() {
	logger := trace.New(os.Stdout, zapcore.InfoLevel)
	defer trace.Sync(logger)

	collection := iterator.NewCollection[int](iterator.Logger(logger))
	defer collection.Close()
	for i := 1; i <= 5; i++ {
		if err := collection.Add(i); err != nil {
			panic(err)
		}
	}

	logger.Info("Factory Pattern Example:")
	logger.Info(join(collection.CreateIterator()))

	logger.Info("Outer class use inner class:")
	logger.Info(join(iterator.NewForwardIterator(collection)))
}

func join(it iterator.Iterator[int]) string {
	var b strings.Builder
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			panic(err)
		}
		b.WriteString(strconv.Itoa(item))
		b.WriteByte(' ')
	}
	return b.String()
}
