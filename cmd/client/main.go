package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

func main() {
	endpoint := flag.String("e", "http://localhost:8080/", "translate-client server address")
	flag.Parse()

	data := url.Values{}

	fmt.Println("Введите текст на английском")

	reader := bufio.NewReader(os.Stdin)
	text, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		fmt.Printf("Ошибка чтения ввода: %v\n", err)
		return
	}
	data.Set("input", strings.TrimRight(text, "\r\n"))

	client := &http.Client{}

	request, err := http.NewRequest(http.MethodPost, *endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		panic(err)
	}
	request.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Add("Accept", "application/json")

	response, err := client.Do(request)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Статус-код: %d\n", response.StatusCode)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		fmt.Printf("Ошибка чтения ответа: %v\n", err)
		return
	}

	fmt.Println(string(body))
}
