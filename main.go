package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/sportsworldcentral/swc_api/controller"
	"github.com/sportsworldcentral/swc_api/db"
	"github.com/sportsworldcentral/swc_api/web"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	portNum := 8000 // 8000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	ctrl, err := controller.New(db)
	if err != nil {
		log.Fatalf("error creating controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatalf("error creating web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		close(shutdown)
	}()

	server.ListenAndServe(shutdown, wg)
	wg.Wait()
	log.Print("shutdown complete")
}
