package main

import (
	"os"

	"github.com/go-leo/design-pattern-demos/internal/trace"
	"github.com/go-leo/design-pattern-demos/visitor"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var roster = []struct {
	Kind visitor.Kind
	Name string
}{
	{Kind: visitor.LionKind, Name: "Simba"},
	{Kind: visitor.LionKind, Name: "Mufasa"},
	{Kind: visitor.TigerKind, Name: "Shere Khan"},
	{Kind: visitor.TigerKind, Name: "Sher Khan"},
}

func main() {
	logger := trace.New(os.Stdout, zapcore.InfoLevel)
	defer trace.Sync(logger)
	run(logger)
}

func run(logger *zap.Logger) {
	zoo := visitor.NewZoo(visitor.Logger(logger))
	defer zoo.Close()
	for _, entry := range roster {
		animal, err := visitor.NewAnimal(entry.Kind, entry.Name, visitor.Logger(logger))
		if err != nil {
			panic(err)
		}
		if err := zoo.AddAnimal(animal); err != nil {
			panic(err)
		}
	}

	feedingVisitor := visitor.NewFeedingVisitor(visitor.Logger(logger))
	defer feedingVisitor.Close()
	zoo.Accept(feedingVisitor) // every animal fed by its own handler

	censusVisitor := visitor.NewCensusVisitor(visitor.Logger(logger))
	for _, animal := range zoo.Animals() {
		animal.Accept(censusVisitor)
	}
	census, err := censusVisitor.JSON()
	if err != nil {
		panic(err)
	}
	logger.Info(string(census))
}
