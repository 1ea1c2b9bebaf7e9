package browser

// highlightOverlayScript строит поверх элемента рамку и ярлык с индексом,
// затем плавно прокручивает элемент в центр экрана. Принимает селектор и
// индекс, возвращает false, если селектор ничего не нашел.
const highlightOverlayScript = `
(args) => {
    const element = document.querySelector(args.selector);
    if (!element) return false;

    const overlay = document.createElement('div');
    overlay.id = 'highlight-overlay-' + args.index;
    overlay.style.position = 'absolute';
    overlay.style.border = '2px solid red';
    overlay.style.backgroundColor = 'rgba(255, 0, 0, 0.2)';
    overlay.style.zIndex = '10000';
    overlay.style.pointerEvents = 'none';

    const label = document.createElement('div');
    label.textContent = args.index;
    label.style.position = 'absolute';
    label.style.backgroundColor = 'red';
    label.style.color = 'white';
    label.style.padding = '2px 5px';
    label.style.borderRadius = '3px';
    label.style.fontSize = '12px';
    label.style.zIndex = '10001';
    label.style.pointerEvents = 'none';

    const rect = element.getBoundingClientRect();
    overlay.style.top = (rect.top + window.scrollY) + 'px';
    overlay.style.left = (rect.left + window.scrollX) + 'px';
    overlay.style.width = rect.width + 'px';
    overlay.style.height = rect.height + 'px';

    label.style.top = (rect.top + window.scrollY - 20) + 'px';
    label.style.left = (rect.left + window.scrollX) + 'px';

    document.body.appendChild(overlay);
    document.body.appendChild(label);

    element.scrollIntoView({ behavior: 'smooth', block: 'center' });

    return true;
}
`

// highlightByXPathScript находит узел по XPath, красит его инлайн-стилями
// и прокручивает в центр экрана. Возвращает false, если узел не найден.
const highlightByXPathScript = `
(xpath) => {
    const result = document.evaluate(xpath, document, null, XPathResult.FIRST_ORDERED_NODE_TYPE, null);
    const element = result.singleNodeValue;
    if (!element) return false;

    element.style.border = '2px solid red';
    element.style.backgroundColor = 'rgba(255, 0, 0, 0.2)';
    element.scrollIntoView({ behavior: 'smooth', block: 'center' });

    return true;
}
`
