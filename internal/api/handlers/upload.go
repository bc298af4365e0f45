package handlers

import (
	"Meal-Planner-Backend/pkg/backend"
	"io"
	"mime/multipart"
)

func readFormFile(field string, fh *multipart.FileHeader) (backend.File, error) {
	file, err := fh.Open()
	if err != nil {
		return backend.File{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return backend.File{}, err
	}

	return backend.File{
		FieldName:   field,
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func readForm(form *multipart.Form) (backend.Form, error) {
	res := backend.Form{Fields: map[string]string{}}
	for key, values := range form.Value {
		if len(values) > 0 {
			res.Fields[key] = values[0]
		}
	}
	for field, headers := range form.File {
		for _, fh := range headers {
			file, err := readFormFile(field, fh)
			if err != nil {
				return backend.Form{}, err
			}
			res.Files = append(res.Files, file)
		}
	}
	return res, nil
}
