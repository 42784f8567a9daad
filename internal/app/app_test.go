package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/GlebRadaev/codequiz/internal/config"
	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_CleanShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestGetRankingsCache_Memory() {
	cache, err := getRankingsCache(context.Background(), &config.Config{})

	s.Require().NoError(err)
	s.NotNil(cache)
}

func (s *ApplicationSuite) TestGetRankingsCache_RedisUnavailable() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := getRankingsCache(ctx, &config.Config{RedisAddress: "127.0.0.1:1"})

	s.Error(err)
}

func (s *ApplicationSuite) TestGetPgxpool_InvalidDSN() {
	_, err := getPgxpool(context.Background(), &config.Config{Database: "://not a dsn"})

	s.Error(err)
}
