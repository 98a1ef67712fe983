package server

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/utilibill/bills-tracker/constants"
	"github.com/utilibill/bills-tracker/internal/common"
	"github.com/utilibill/bills-tracker/internal/export"
	"github.com/utilibill/bills-tracker/internal/parse"
)

func (s *Server) handleHealth(c *gin.Context) {
	if s.health != nil {
		if err := s.health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleUpload accepts a multipart bill document, runs the full pipeline, and
// returns the stored record.
func (s *Server) handleUpload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}
	if constants.MapExtToFormat(filepath.Ext(fh.Filename)) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
		return
	}

	tmp := filepath.Join(os.TempDir(), filepath.Base(fh.Filename))
	if err := c.SaveUploadedFile(fh, tmp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store upload: " + err.Error()})
		return
	}
	defer func() { _ = os.Remove(tmp) }()

	rec, err := s.proc.ProcessFile(c.Request.Context(), tmp)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

type parseTextRequest struct {
	Text     string `json:"text" binding:"required"`
	FileName string `json:"file_name"`
}

// handleParseText runs the extraction engine over raw text without touching
// storage. Useful for debugging a layout the patterns miss.
func (s *Server) handleParseText(c *gin.Context) {
	var req parseTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.FileName == "" {
		req.FileName = "inline.txt"
	}
	rec := parse.NewAssembler(s.log).Assemble(req.Text, req.FileName)
	account := parse.ExtractAccountInfo(req.Text)
	c.JSON(http.StatusOK, gin.H{"record": rec, "account": account})
}

func (s *Server) handleList(c *gin.Context) {
	from, to, ok := dateWindow(c)
	if !ok {
		return
	}
	recs, err := s.bills.ListBills(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bills": recs, "count": len(recs)})
}

func (s *Server) handleExportCSV(c *gin.Context) {
	from, to, ok := dateWindow(c)
	if !ok {
		return
	}
	recs, err := s.bills.ListBills(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, recs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bills.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (s *Server) handleExportXLSX(c *gin.Context) {
	from, to, ok := dateWindow(c)
	if !ok {
		return
	}
	recs, err := s.bills.ListBills(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	data, err := export.WriteXLSX(recs, s.log)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bills.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (s *Server) handleAccount(c *gin.Context) {
	info, err := s.accounts.GetAccount(c.Request.Context())
	if errors.Is(err, common.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no account identity extracted yet"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

// dateWindow parses optional from/to query params (YYYY-MM-DD). On a bad
// value it writes the 400 itself and reports !ok.
func dateWindow(c *gin.Context) (from, to *time.Time, ok bool) {
	parseParam := func(name string) (*time.Time, bool) {
		v := c.Query(name)
		if v == "" {
			return nil, true
		}
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " date, use YYYY-MM-DD"})
			return nil, false
		}
		return &t, true
	}
	if from, ok = parseParam("from"); !ok {
		return nil, nil, false
	}
	if to, ok = parseParam("to"); !ok {
		return nil, nil, false
	}
	return from, to, true
}
