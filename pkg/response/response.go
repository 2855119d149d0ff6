package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Resp is the stable envelope for every agent-facing endpoint: `ok` and
// `message` are always present so clients never need branch-specific parsing.
// Richer responses embed Resp and add their own optional fields.
type Resp struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// NewFailResp returns a failure envelope with the given user-facing message.
func NewFailResp(message string) Resp {
	return Resp{OK: false, Message: message}
}

// OK sends 200 with the body as-is. The body is expected to carry the
// ok/message contract itself (usually by embedding Resp).
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Fail sends 200 with ok:false and a user-facing message. Domain failures are
// not protocol failures: the request itself was handled.
func Fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, NewFailResp(message))
}

// BadRequest sends 400 for requests that could not be parsed at all.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, NewFailResp(err.Error()))
}

// TooManyRequests sends 429 when the caller is rate limited.
func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, NewFailResp(message))
}
