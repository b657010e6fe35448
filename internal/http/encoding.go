package http

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/gorilla/schema"
)

var queryEncoder = newQueryEncoder()

func newQueryEncoder() *schema.Encoder {
	encoder := schema.NewEncoder()
	encoder.RegisterEncoder(watson.CSV{}, func(value reflect.Value) string {
		csv, _ := value.Interface().(watson.CSV)

		return csv.String()
	})
	encoder.RegisterEncoder(false, func(value reflect.Value) string {
		if value.Bool() {
			return constants.BooleanTrue
		}

		return constants.BooleanFalse
	})
	// thresholds such as 0.0000001 must not be rounded to six decimals
	encoder.RegisterEncoder(float64(0), func(value reflect.Value) string {
		return strconv.FormatFloat(value.Float(), 'f', -1, 64)
	})

	return encoder
}

// EncodeQuery turns a struct with schema tags into query values. Nil pointers
// tagged omitempty are dropped, *bool values encode as "true"/"false",
// floats use the shortest exact form and watson.CSV fields are joined with
// commas.
func EncodeQuery(params interface{}) (url.Values, error) {
	values := url.Values{}

	if params == nil {
		return values, nil
	}

	err := queryEncoder.Encode(params, values)
	if err != nil {
		return nil, fmt.Errorf("encoding query parameters: %w", err)
	}

	return values, nil
}

// PathJoin builds a URL path from segments, escaping each one. Segments are
// taken verbatim, so an ID containing "/" stays one segment.
func PathJoin(segments ...string) string {
	var builder strings.Builder

	for _, segment := range segments {
		builder.WriteByte('/')
		builder.WriteString(url.PathEscape(segment))
	}

	return builder.String()
}

func encodeMultipart(parts []FormPart) ([]byte, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	for _, part := range parts {
		if part.Content == nil {
			err := writer.WriteField(part.Name, part.Value)
			if err != nil {
				return nil, "", fmt.Errorf("writing form field %s: %w", part.Name, err)
			}

			continue
		}

		header := make(textproto.MIMEHeader)

		disposition := fmt.Sprintf(`form-data; name="%s"`, escapeQuotes(part.Name))
		if part.Filename != "" {
			disposition += fmt.Sprintf(`; filename="%s"`, escapeQuotes(part.Filename))
		}

		header.Set("Content-Disposition", disposition)

		contentType := part.ContentType
		if contentType == "" {
			contentType = constants.ContentTypeOctetStream
		}

		header.Set(constants.HeaderContentType, contentType)

		partWriter, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("creating form part %s: %w", part.Name, err)
		}

		_, err = io.Copy(partWriter, part.Content)
		if err != nil {
			return nil, "", fmt.Errorf("writing form part %s: %w", part.Name, err)
		}
	}

	err := writer.Close()
	if err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
