package main

import (
	"os"

	"github.com/go-leo/design-pattern-demos/internal/trace"
	"github.com/go-leo/design-pattern-demos/observer"
	"go.uber.org/zap/zapcore"
)

func main() {
	logger := trace.New(os.Stdout, zapcore.InfoLevel)
	defer trace.Sync(logger)

	subject := observer.NewConcreteSubject(observer.Logger(logger))
	defer subject.Close()
	concreteObserver := observer.NewConcreteObserver(observer.Logger(logger))
	defer concreteObserver.Close()

	if err := subject.Attach(concreteObserver); err != nil {
		panic(err)
	}
	subject.SetState(1)
	subject.Notify()
	subject.SetState(2)
	subject.Notify()
	subject.Detach(concreteObserver)
}
