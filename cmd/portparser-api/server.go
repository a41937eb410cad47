package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/conllu"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/pipeline"
)

const (
	optionsKey       = "options"
	lastSentIDHeader = "X-Last-Sent-Id"
)

type HttpError struct {
	code int
	error
}

func (e HttpError) Error() string {
	return e.error.Error()
}

func NewHttpError(code int, err error) HttpError {
	return HttpError{
		code:  code,
		error: err,
	}
}

type server struct {
	controller controller
}

func newRouter(s server, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		lib.RequestID(),
		gin.LoggerWithFormatter(lib.JsonLogFormatter),
		cors.New(corsConfig(allowedOrigins)),
	)
	s.RegisterRoutes(r)
	return r
}

func corsConfig(allowedOrigins []string) cors.Config {
	conf := cors.DefaultConfig()
	conf.AllowHeaders = append(conf.AllowHeaders, lib.RequestIDHeader)
	conf.ExposeHeaders = []string{lib.RequestIDHeader, lastSentIDHeader}
	conf.AllowAllOrigins = len(allowedOrigins) == 0
	for _, origin := range allowedOrigins {
		if origin == "*" {
			conf.AllowAllOrigins = true
		}
	}
	if !conf.AllowAllOrigins {
		conf.AllowOrigins = allowedOrigins
	}
	return conf
}

func (s server) RegisterRoutes(r *gin.Engine) {
	r.POST("/sentences", validateBody, s.Sentences)
	r.POST("/tokens", validateBody, s.GetOptions, s.Tokens)
	r.POST("/conllu", validateBody, s.GetOptions, s.CoNLLU)
	r.GET("/lexicon/:word", s.Lookup)
	r.GET("/healthz", s.Health)
}

// GetOptions reads the query string into requestOptions.
func (s server) GetOptions(c *gin.Context) {
	var opts requestOptions
	var err error
	if opts.Match, err = queryBool(c, "match"); err != nil {
		handleError(c, err)
		return
	}
	if opts.Trim, err = queryBool(c, "trim"); err != nil {
		handleError(c, err)
		return
	}
	if opts.Segment, err = queryBool(c, "segment"); err != nil {
		handleError(c, err)
		return
	}
	opts.SentID = c.DefaultQuery("sid", pipeline.DefaultSentID)
	if opts.IDMode, err = conllu.ParseIDMode(c.DefaultQuery("sid_mode", s.controller.defaults.IDMode.String())); err != nil {
		handleError(c, NewHttpError(400, err))
		return
	}
	opts.DocID = c.Query("doc_id")

	c.Set(optionsKey, opts)
	c.Next()
}

func queryBool(c *gin.Context, name string) (bool, error) {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, NewHttpError(400, fmt.Errorf("invalid %s query parameter - must be true or false", name))
	}
	return b, nil
}

func getContentType(c *gin.Context) (contentType, bool) {
	ct, ok := allowedContentTypeEnumMap[c.ContentType()]
	if !ok {
		handleError(c, NewHttpError(400, errors.New("invalid content type - must be text/html or text/plain")))
	}
	return ct, ok
}

func (s server) Sentences(c *gin.Context) {
	ct, ok := getContentType(c)
	if !ok {
		return
	}

	sentences, err := s.controller.Segment(c.Request.Body, ct)
	if err != nil {
		handleError(c, err)
		return
	}
	if sentences == nil {
		sentences = []string{}
	}

	c.JSON(200, sentences)
}

func (s server) Tokens(c *gin.Context) {
	ct, ok := getContentType(c)
	if !ok {
		return
	}
	opts := c.MustGet(optionsKey).(requestOptions)

	sentences, err := s.controller.Tokenize(c.Request.Context(), c.Request.Body, ct, opts)
	if err != nil {
		handleError(c, err)
		return
	}
	if len(sentences) > 0 {
		c.Header(lastSentIDHeader, sentences[len(sentences)-1].ID)
	}

	c.JSON(200, sentences)
}

func (s server) CoNLLU(c *gin.Context) {
	ct, ok := getContentType(c)
	if !ok {
		return
	}
	opts := c.MustGet(optionsKey).(requestOptions)

	data, summary, err := s.controller.CoNLLU(c.Request.Context(), c.Request.Body, ct, opts)
	if err != nil {
		handleError(c, err)
		return
	}
	if summary.LastID != "" {
		c.Header(lastSentIDHeader, summary.LastID)
	}

	c.Data(200, "text/plain; charset=utf-8", data)
}

func (s server) Lookup(c *gin.Context) {
	word := c.Param("word")
	res, ok := s.controller.Lookup(word)
	if !ok {
		handleError(c, NewHttpError(404, fmt.Errorf("word %q not found", word)))
		return
	}

	c.JSON(200, res)
}

func (s server) Health(c *gin.Context) {
	c.JSON(200, map[string]interface{}{
		"status": "ok",
	})
}

func validateBody(c *gin.Context) {
	if c.Request.Body == nil {
		handleError(c, NewHttpError(400, errors.New("request body missing")))
	} else if _, err := c.Request.Body.Read(nil); err == io.EOF {
		handleError(c, NewHttpError(400, errors.New("request body missing")))
	} else {
		c.Next()
	}
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		abort(c, 500, errors.New("abort called on nil error"))
		return
	}
	switch e := err.(type) {
	case HttpError:
		abort(c, e.code, e.error)
	default:
		abort(c, 500, e)
	}
}

func abort(c *gin.Context, code int, err error) {
	switch {
	case code <= 500:
		c.JSON(code, map[string]interface{}{
			"status":  code,
			"message": err.Error(),
		})
		c.Abort()
	default:
		_ = c.AbortWithError(code, err)
	}
}
