package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/pipeline"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/testhelpers"
)

func TestServer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Server Suite")
}

func testController() controller {
	return controller{
		lexicon:  testhelpers.Lexicon(),
		abbrev:   testhelpers.Abbrev(),
		defaults: pipeline.Options{Workers: 2},
	}
}

func send(router *gin.Engine, method, target, contentType, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

var _ = Describe("Server", func() {

	var router *gin.Engine

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = newRouter(server{controller: testController()}, nil)
	})

	Describe("POST /sentences", func() {

		It("Should segment plain text", func() {
			res := send(router, "POST", "/sentences", "text/plain", "O Sr. Silva fez. Isso é ótimo")

			Ω(res.Code).Should(Equal(http.StatusOK))
			Ω(res.Body.String()).Should(MatchJSON(`["O Sr. Silva fez.", "Isso é ótimo."]`))
		})

		It("Should segment each html block", func() {
			res := send(router, "POST", "/sentences", "text/html; charset=utf-8", "<h1>Notícias</h1><p>Ele chegou. Ela saiu.</p>")

			Ω(res.Code).Should(Equal(http.StatusOK))
			Ω(res.Body.String()).Should(MatchJSON(`["Notícias.", "Ele chegou.", "Ela saiu."]`))
		})

		It("Should be a bad request when the body is missing", func() {
			res := send(router, "POST", "/sentences", "text/plain", "")

			Ω(res.Code).Should(Equal(http.StatusBadRequest))
			Ω(res.Body.String()).Should(MatchJSON(`{"status": 400, "message": "request body missing"}`))
		})

		It("Should be a bad request for other content types", func() {
			res := send(router, "POST", "/sentences", "application/json", `{"text": "Oi."}`)

			Ω(res.Code).Should(Equal(http.StatusBadRequest))
			Ω(res.Body.String()).Should(ContainSubstring("invalid content type"))
		})
	})

	Describe("POST /tokens", func() {

		It("Should tokenize one sentence per line", func() {
			res := send(router, "POST", "/tokens?match=true", "text/plain", "Vou à praia\n!!!")

			Ω(res.Code).Should(Equal(http.StatusOK))
			Ω(res.Header().Get(lastSentIDHeader)).Should(Equal("S0002"))

			var sentences []pipeline.Sentence
			Ω(json.Unmarshal(res.Body.Bytes(), &sentences)).Should(Succeed())
			Ω(sentences).Should(HaveLen(2))
			Ω(sentences[0].ID).Should(Equal("S0001"))
			Ω(sentences[0].Text).Should(Equal("Vou à praia."))
			Ω(sentences[0].Tokens).Should(HaveLen(4))
			Ω(sentences[0].Tokens[1].Words).Should(Equal([]string{"a", "a"}))
			Ω(sentences[1].Dropped()).Should(BeTrue())
		})

		It("Should be a bad request for an invalid flag", func() {
			res := send(router, "POST", "/tokens?match=maybe", "text/plain", "Oi.")

			Ω(res.Code).Should(Equal(http.StatusBadRequest))
			Ω(res.Body.String()).Should(ContainSubstring("invalid match query parameter"))
		})

		It("Should be a bad request for an unknown sentence id mode", func() {
			res := send(router, "POST", "/tokens?sid_mode=random", "text/plain", "Oi.")

			Ω(res.Code).Should(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /conllu", func() {

		It("Should write a CoNLL-U document", func() {
			res := send(router, "POST", "/conllu?segment=true&sid=D0009&doc_id=d", "text/html", "<p>Um. Dois.</p>")

			Ω(res.Code).Should(Equal(http.StatusOK))
			Ω(res.Header().Get("Content-Type")).Should(HavePrefix("text/plain"))
			Ω(res.Header().Get(lastSentIDHeader)).Should(Equal("D0011"))
			Ω(res.Body.String()).Should(HavePrefix("# newdoc id = d\n# newpar\n# sent_id = D0010\n# text = Um.\n"))
			Ω(res.Body.String()).Should(ContainSubstring("# sent_id = D0011\n# text = Dois.\n"))
		})

		It("Should keep legacy sentence ids when asked", func() {
			res := send(router, "POST", "/conllu?sid=S9999&sid_mode=legacy", "text/plain", "Oi.")

			Ω(res.Code).Should(Equal(http.StatusOK))
			Ω(res.Body.String()).Should(HavePrefix("# sent_id = 10000\n"))
		})
	})

	Describe("GET /lexicon/:word", func() {

		It("Should return the entries of a word", func() {
			res := send(router, "GET", "/lexicon/casa", "", "")

			Ω(res.Code).Should(Equal(http.StatusOK))
			var word wordResponse
			Ω(json.Unmarshal(res.Body.Bytes(), &word)).Should(Succeed())
			Ω(word.Word).Should(Equal("casa"))
			Ω(word.Entries).Should(HaveLen(2))
			Ω(word.Entries[1].Lemma).Should(Equal("casar"))
		})

		It("Should be not found for unknown words", func() {
			res := send(router, "GET", "/lexicon/xyz", "", "")

			Ω(res.Code).Should(Equal(http.StatusNotFound))
		})
	})

	Describe("Middleware", func() {

		It("Should echo the request id", func() {
			req := httptest.NewRequest("GET", "/healthz", nil)
			req.Header.Set(lib.RequestIDHeader, "abc")
			res := httptest.NewRecorder()
			router.ServeHTTP(res, req)

			Ω(res.Code).Should(Equal(http.StatusOK))
			Ω(res.Header().Get(lib.RequestIDHeader)).Should(Equal("abc"))
		})

		It("Should create a request id", func() {
			res := send(router, "GET", "/healthz", "", "")

			Ω(res.Header().Get(lib.RequestIDHeader)).Should(HaveLen(36))
		})

		It("Should allow cross origin requests", func() {
			req := httptest.NewRequest("GET", "/healthz", nil)
			req.Header.Set("Origin", "http://example.com")
			res := httptest.NewRecorder()
			router.ServeHTTP(res, req)

			Ω(res.Code).Should(Equal(http.StatusOK))
			Ω(res.Header().Get("Access-Control-Allow-Origin")).Should(Equal("*"))
		})
	})
})
