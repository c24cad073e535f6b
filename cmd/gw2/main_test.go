package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gw2-api/internal/testutils"
)

type CommandTestSuite struct {
	suite.Suite
	out *bytes.Buffer
}

func TestCommandTestSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}

func (s *CommandTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	rootCmd.SetOut(s.out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(""))
}

func (s *CommandTestSuite) run(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func (s *CommandTestSuite) TestChatlinkDecode() {
	s.Require().NoError(s.run("chatlink", "decode", "[&AgHSBABA/l8AAA==]"))

	s.Contains(s.out.String(), "Item ID:   1234")
	s.Contains(s.out.String(), "Quantity:  1")
	s.Contains(s.out.String(), "Suffix:    24574")
	s.NotContains(s.out.String(), "Skin ID")
}

func (s *CommandTestSuite) TestChatlinkDecodeInvalid() {
	s.Error(s.run("chatlink", "decode", "AgGqtgAA"))
}

func (s *CommandTestSuite) TestChatlinkEncode() {
	s.Require().NoError(s.run("chatlink", "encode",
		"--item=30684", "--quantity=1", "--skin=0", "--suffix=24554", "--secondary-suffix=24555"))

	s.Equal("[&AgHcdwBg6l8AAOtfAAA=]\n", s.out.String())
}

func (s *CommandTestSuite) TestItemConvertFile() {
	data, err := json.Marshal(testutils.ZapRecord())
	s.Require().NoError(err)
	path := filepath.Join(s.T().TempDir(), "zap.json")
	s.Require().NoError(os.WriteFile(path, data, 0o600))

	s.Require().NoError(s.run("item", "convert", path))

	var got map[string]any
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &got))
	s.Equal("Trophy", got["type"])
	s.Equal("[&AgGqtgAA]", got["item"].(map[string]any)["chat_link"])
}

func (s *CommandTestSuite) TestItemConvertStdinArray() {
	data, err := json.Marshal(append(
		[]any{testutils.SwordRecord()},
		testutils.FoodRecord(),
	))
	s.Require().NoError(err)
	rootCmd.SetIn(bytes.NewReader(data))

	s.Require().NoError(s.run("item", "convert", "-"))

	var got []map[string]any
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &got))
	s.Require().Len(got, 2)
	s.Equal("Sword", got[0]["type"])
	s.Equal("Food", got[1]["type"])
}

func (s *CommandTestSuite) TestItemConvertRejectsGarbage() {
	rootCmd.SetIn(strings.NewReader("not json"))

	s.Error(s.run("item", "convert", "-"))
}

func (s *CommandTestSuite) TestItemGet() {
	body, err := os.ReadFile(filepath.Join("..", "..", "internal", "clients", "gw2", "testdata", "item_details_sword.json"))
	s.Require().NoError(err)

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/item_details.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer api.Close()

	s.Require().NoError(s.run("item", "get", "--api-url", api.URL+"/", "1234"))

	var got map[string]any
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &got))
	s.Equal("Sword", got["type"])
}

func (s *CommandTestSuite) TestItemGetRejectsBadID() {
	s.Error(s.run("item", "get", "sword"))
}
