package httpclient

import (
	"net"
	"net/http"
	"time"
)

// Controller embeds an http.Client
// and uses it internally
type Controller struct {
	*http.Client
}

var Client Controller

func init() {
	client := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: time.Second * 3,
			}).DialContext,
			MaxIdleConnsPerHost: 50,

			ResponseHeaderTimeout: time.Second * 5,
		},
		// total budget per request, covers body read
		Timeout: 10 * time.Second,
	}
	Client = Controller{Client: client}
}
